package server

import (
	"errors"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Handler drives the read/respond loop of one client.
type Handler struct {
	Id        uuid.UUID
	State     ConnState
	conn      LineConn
	processor *Processor
	log       *log.Entry
}

func NewHandler(conn LineConn, p *Processor) *Handler {
	id := uuid.New()
	return &Handler{
		Id:        id,
		conn:      conn,
		processor: p,
		log: log.WithFields(log.Fields{
			"conn":   id.String(),
			"remote": conn.RemoteAddr(),
		}),
	}
}

// Run sends welcome, then answers lines until the client leaves, a
// response asks for the connection to close, or I/O fails. The
// connection is always closed on return; end of stream is not an error.
func (h *Handler) Run(welcome string) error {
	defer h.conn.Close()
	h.State = CS_CONNECTED
	if err := h.conn.WriteLine(welcome); err != nil {
		return err
	}
	for {
		line, err := h.conn.ReadLine()
		if err != nil {
			h.State = CS_CLOSING
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		h.State = CS_PROCESSING
		resp := h.processor.Handle(line)
		if resp.Exploded {
			h.log.Infof("Handler.Run %q exploded", line)
		} else {
			h.log.Debugf("Handler.Run %q", line)
		}
		if err := h.conn.WriteLine(resp.Text); err != nil {
			h.State = CS_CLOSING
			return err
		}
		if resp.Close {
			h.State = CS_CLOSING
			return nil
		}
		h.State = CS_CONNECTED
	}
}
