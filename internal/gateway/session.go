package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"server-aide/internal/command"
	"server-aide/pkg/jobmgr"
)

// request is one inbound frame: either a command invocation or, when Cancel
// is set, a control frame asking to cancel the in-flight invocation with that
// request id.
type request struct {
	ID      string   `json:"id,omitempty"`
	Command string   `json:"command,omitempty"`
	Args    []string `json:"args,omitempty"`
	Cancel  string   `json:"cancel,omitempty"`
}

// response is the result envelope echoed back with the request id.
type response struct {
	ID string `json:"id,omitempty"`
	command.Result
}

// session is one connected client. A reader goroutine pulls frames off the
// wire while the dispatch loop runs them one at a time, so invocations from
// the same connection complete in receipt order while a disconnect is
// observed even mid-invocation. Separate connections run concurrently.
type session struct {
	id       string
	conn     *websocket.Conn
	disp     *command.Dispatcher
	services command.Services
	jobs     *jobmgr.Manager
	started  time.Time

	writeMu sync.Mutex
}

func newSession(conn *websocket.Conn, disp *command.Dispatcher, services command.Services) *session {
	return &session{
		id:       uuid.NewString(),
		conn:     conn,
		disp:     disp,
		services: services,
		jobs:     jobmgr.NewManager(),
		started:  time.Now(),
	}
}

// run dispatches frames until the connection or ctx ends. When it returns,
// any in-flight invocation has been cancelled and its partial result
// discarded.
func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		s.jobs.StopAll()
		s.conn.Close()
	}()

	// Unblock the reader when ctx is cancelled from outside.
	go func() {
		<-ctx.Done()
		s.conn.Close()
	}()

	frames := make(chan request)
	go s.readLoop(ctx, cancel, frames)

	for {
		select {
		case req, ok := <-frames:
			if !ok {
				return
			}
			s.write(s.invoke(ctx, req))
		case <-ctx.Done():
			return
		}
	}
}

// readLoop feeds command frames to the dispatch loop and handles control
// frames inline, so a cancel request takes effect while a dispatch is still
// running. On disconnect it cancels the session context, which tears down
// whatever is in flight.
func (s *session) readLoop(ctx context.Context, cancel context.CancelFunc, frames chan<- request) {
	defer close(frames)

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[WARN] Session %s read error: %v", s.id, err)
			}
			if inFlight := s.jobs.Running(); len(inFlight) > 0 {
				log.Printf("[INFO] Session %s closed with %d invocation(s) in flight, cancelling", s.id, len(inFlight))
			}
			cancel()
			return
		}

		var req request
		if err := json.Unmarshal(raw, &req); err != nil {
			s.write(response{Result: *command.Failure("malformed request frame", err)})
			continue
		}

		if req.Cancel != "" {
			s.handleCancel(req.Cancel)
			continue
		}
		if req.ID == "" {
			req.ID = uuid.NewString()
		}

		select {
		case frames <- req:
		case <-ctx.Done():
			return
		}
	}
}

// handleCancel stops the named in-flight invocation. The cancelled dispatch
// still produces its own envelope; this only acknowledges the control frame.
func (s *session) handleCancel(id string) {
	if s.jobs.Stop(id) {
		s.write(response{ID: id, Result: *command.Success("invocation cancelled")})
		return
	}
	s.write(response{ID: id, Result: *command.Failure(
		"nothing to cancel", fmt.Errorf("no in-flight invocation %q", id))})
}

// invoke runs one dispatch under job tracking: the job name is the request
// id, so a duplicate id can never produce overlapping dispatches, and a
// cancel frame or disconnect tears the invocation down by name.
func (s *session) invoke(ctx context.Context, req request) response {
	ec := command.BuildContext(command.SessionInfo{
		ID:      s.id,
		Remote:  s.conn.RemoteAddr().String(),
		Started: s.started,
	}, s.disp.Registry().Snapshot(), s.services)

	var res *command.Result
	err := s.jobs.StartSync(ctx, req.ID, func(jctx context.Context) error {
		res = s.disp.Dispatch(jctx, req.Command, req.Args, ec)
		return nil
	})
	if err != nil {
		return response{ID: req.ID, Result: *command.Failure("invocation rejected", err)}
	}
	return response{ID: req.ID, Result: *res}
}

func (s *session) write(resp response) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(resp); err != nil {
		log.Printf("[WARN] Session %s write error: %v", s.id, err)
	}
}
