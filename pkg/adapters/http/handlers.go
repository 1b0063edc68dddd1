package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aretw0/menutree/internal/presentation/graph"
	"github.com/aretw0/menutree/internal/sanitize"
	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/editor"
	"github.com/aretw0/menutree/pkg/export"
)

// maxBodySize bounds request bodies before they are decoded.
const maxBodySize = 1 << 20

// NodeView is a node as returned by the API, with its display title.
type NodeView struct {
	*domain.Node
	Title string `json:"title"`
}

type publishResponse struct {
	SessionID string `json:"sessionId"`
	Buttons   int    `json:"buttons"`
	Revision  string `json:"revision,omitempty"`
}

// revisionPublisher is implemented by sinks that version their documents.
type revisionPublisher interface {
	PublishRevision(ctx context.Context, sessionID string, doc *export.Document) (string, error)
}

var errBadRequest = errors.New("bad request")

func decodeBody(r *http.Request, v any, optional bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid request body: %v", errBadRequest, err)
	}
	return nil
}

// writeError maps domain errors to status codes.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrDocumentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrIndexOutOfRange),
		errors.Is(err, domain.ErrSessionExists):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidMediaType),
		errors.Is(err, sanitize.ErrTooLarge),
		errors.Is(err, sanitize.ErrInvalidUTF8),
		errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "status", status, "err", err)
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

// paramError reports a path or query parameter the generated router could not bind.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeError(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
}

// edit runs fn on the session editor and broadcasts the edit when it succeeds.
func (s *Server) edit(r *http.Request, sid string, ev EditEvent, fn func(*editor.Editor) error) error {
	if err := s.sessions.WithSession(r.Context(), sid, fn); err != nil {
		return err
	}
	s.streams.Broadcast(sid, ev)
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func view(ed *editor.Editor, n *domain.Node) NodeView {
	title, _ := ed.Title(n.ID)
	return NodeView{Node: n, Title: title}
}

// ListSessions handles GET /sessions.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"sessions": s.sessions.List(r.Context())})
}

// CreateSession handles POST /sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionJSONRequestBody
	if err := decodeBody(r, &req, true); err != nil {
		s.writeError(w, r, err)
		return
	}

	sid, err := s.sessions.Create(r.Context(), deref(req.SessionId))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	info, err := s.sessions.Info(r.Context(), sid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, info)
}

func (s *Server) GetSession(w http.ResponseWriter, r *http.Request, sid SessionID) {
	info, err := s.sessions.Info(r.Context(), sid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request, sid SessionID) {
	if err := s.sessions.Delete(r.Context(), sid); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.streams.Close(sid)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ListRoots(w http.ResponseWriter, r *http.Request, sid SessionID) {
	var roots []NodeView
	err := s.sessions.WithSession(r.Context(), sid, func(ed *editor.Editor) error {
		nodes := ed.ListRoots()
		roots = make([]NodeView, len(nodes))
		for i, n := range nodes {
			roots[i] = view(ed, n)
		}
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]NodeView{"roots": roots})
}

func (s *Server) AddRootButton(w http.ResponseWriter, r *http.Request, sid SessionID) {
	var out NodeView
	err := s.sessions.WithSession(r.Context(), sid, func(ed *editor.Editor) error {
		n, err := ed.AddRootButton()
		if err != nil {
			return err
		}
		out = view(ed, n)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.streams.Broadcast(sid, EditEvent{Op: string(editor.OpAddRoot), NodeID: out.ID})
	writeJSON(w, http.StatusCreated, out)
}

func (s *Server) GetButton(w http.ResponseWriter, r *http.Request, sid SessionID, id NodeID) {
	var out NodeView
	err := s.sessions.WithSession(r.Context(), sid, func(ed *editor.Editor) error {
		n, err := ed.Node(id)
		if err != nil {
			return err
		}
		out = view(ed, n)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// clean sanitizes every present text field of the request in place.
func (s *Server) clean(fields ...**string) error {
	for _, f := range fields {
		v, err := s.sanitizer.Optional(*f)
		if err != nil {
			return err
		}
		*f = v
	}
	return nil
}

// EditButton handles PATCH /sessions/{sid}/buttons/{id}.
// Absent fields are left alone.
func (s *Server) EditButton(w http.ResponseWriter, r *http.Request, sid SessionID, id NodeID) {
	var req EditButtonJSONRequestBody
	if err := decodeBody(r, &req, false); err != nil {
		s.writeError(w, r, err)
		return
	}
	patch := editor.ButtonPatch{
		ButtonText:     req.ButtonText,
		ReplyText:      req.ReplyText,
		TemplateID:     req.TemplateId,
		Labels:         req.Labels,
		TemplateParams: req.TemplateParams,
		IsCarousel:     req.IsCarousel,
	}
	if err := s.clean(&patch.ButtonText, &patch.ReplyText, &patch.TemplateID, &patch.Labels, &patch.TemplateParams); err != nil {
		s.writeError(w, r, err)
		return
	}

	var out NodeView
	err := s.edit(r, sid, EditEvent{Op: "edit_button", NodeID: id}, func(ed *editor.Editor) error {
		if err := ed.PatchButton(id, patch); err != nil {
			return err
		}
		n, err := ed.Node(id)
		if err != nil {
			return err
		}
		out = view(ed, n)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) AddCarouselCard(w http.ResponseWriter, r *http.Request, sid SessionID, id NodeID) {
	var index int
	err := s.sessions.WithSession(r.Context(), sid, func(ed *editor.Editor) error {
		var err error
		index, err = ed.AddCarouselCard(id)
		return err
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.streams.Broadcast(sid, EditEvent{Op: string(editor.OpAddCard), NodeID: id, Index: &index})
	writeJSON(w, http.StatusCreated, map[string]int{"index": index})
}

// EditCarouselCard handles PATCH /sessions/{sid}/buttons/{id}/cards/{index}.
func (s *Server) EditCarouselCard(w http.ResponseWriter, r *http.Request, sid SessionID, id NodeID, index int) {
	var req EditCarouselCardJSONRequestBody
	if err := decodeBody(r, &req, false); err != nil {
		s.writeError(w, r, err)
		return
	}
	patch := editor.CardPatch{MediaURL: req.MediaUrl, Params: req.Params}
	if req.MediaType != nil {
		mt := string(*req.MediaType)
		patch.MediaType = &mt
	}
	if err := s.clean(&patch.MediaURL, &patch.Params); err != nil {
		s.writeError(w, r, err)
		return
	}

	var out NodeView
	err := s.edit(r, sid, EditEvent{Op: "edit_card", NodeID: id, Index: &index}, func(ed *editor.Editor) error {
		if err := ed.PatchCard(id, index, patch); err != nil {
			return err
		}
		n, err := ed.Node(id)
		if err != nil {
			return err
		}
		out = view(ed, n)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) AddSubButton(w http.ResponseWriter, r *http.Request, sid SessionID, id NodeID) {
	var req AddSubButtonJSONRequestBody
	if err := decodeBody(r, &req, false); err != nil {
		s.writeError(w, r, err)
		return
	}

	var out NodeView
	err := s.sessions.WithSession(r.Context(), sid, func(ed *editor.Editor) error {
		n, err := ed.AddSubButtonFromLabel(id, req.Label)
		if err != nil {
			return err
		}
		out = view(ed, n)
		return nil
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.streams.Broadcast(sid, EditEvent{Op: string(editor.OpAddSubButton), NodeID: out.ID})
	writeJSON(w, http.StatusCreated, out)
}

// exportSession builds the document under the session lock.
func (s *Server) exportSession(r *http.Request, sid string) (*export.Document, error) {
	var doc *export.Document
	err := s.sessions.WithSession(r.Context(), sid, func(ed *editor.Editor) error {
		var err error
		doc, err = s.exporter.Export(ed.Tree())
		return err
	})
	return doc, err
}

// ExportDocument handles GET /sessions/{sid}/export.
func (s *Server) ExportDocument(w http.ResponseWriter, r *http.Request, sid SessionID, params ExportDocumentParams) {
	doc, err := s.exportSession(r, sid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := export.Marshal(doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.MIMEType)
	if params.Download != nil && *params.Download {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// GetGraph handles GET /sessions/{sid}/graph.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request, sid SessionID, params GetGraphParams) {
	doc, err := s.exportSession(r, sid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	pending := params.Pending != nil && *params.Pending

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, graph.GenerateMermaid(doc, graph.Options{Pending: pending, Numbering: true}))
}

// PublishDocument handles POST /sessions/{sid}/publish.
func (s *Server) PublishDocument(w http.ResponseWriter, r *http.Request, sid SessionID) {
	if s.sink == nil {
		writeJSON(w, http.StatusNotImplemented, errorBody{Error: "no export sink configured"})
		return
	}

	doc, err := s.exportSession(r, sid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := publishResponse{SessionID: sid, Buttons: doc.Count()}
	if rp, ok := s.sink.(revisionPublisher); ok {
		resp.Revision, err = rp.PublishRevision(r.Context(), sid, doc)
	} else {
		err = s.sink.Publish(r.Context(), sid, doc)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info("document published", "session_id", sid, "buttons", resp.Buttons, "revision", resp.Revision)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) FetchPublished(w http.ResponseWriter, r *http.Request, sid SessionID) {
	if s.sink == nil {
		writeJSON(w, http.StatusNotImplemented, errorBody{Error: "no export sink configured"})
		return
	}
	doc, err := s.sink.Fetch(r.Context(), sid)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := export.Marshal(doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", export.MIMEType)
	_, _ = w.Write(data)
}
