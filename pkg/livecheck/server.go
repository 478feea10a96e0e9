package livecheck

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/kbirk/cnd/pkg/parse"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Diagnostic is one positioned finding for a checked document. Line and
// Column are 1-based; zero means the position is unknown.
type Diagnostic struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// Result is the reply for one checked document.
type Result struct {
	Valid         bool         `json:"valid"`
	NumNamespaces int          `json:"num_namespaces"`
	NumNodeTypes  int          `json:"num_node_types"`
	Diagnostics   []Diagnostic `json:"diagnostics,omitempty"`
}

// CheckDocument parses the document and folds the outcome into a Result. A
// malformed document yields Valid false with a positioned diagnostic, never
// an error.
func CheckDocument(content string) *Result {
	s, err := parse.Parse(content)
	if err != nil {
		diag := Diagnostic{Message: err.Error()}

		var parseErr *parse.ParseError
		var scanErr *parse.ScanError
		if errors.As(err, &parseErr) {
			diag.Message = parseErr.Message
			diag.Line = parseErr.Token.Line
			diag.Column = parseErr.Token.Column
		} else if errors.As(err, &scanErr) {
			diag.Message = scanErr.Message
			diag.Line = scanErr.Line
			diag.Column = scanErr.Column
		}

		return &Result{
			Valid:       false,
			Diagnostics: []Diagnostic{diag},
		}
	}

	return &Result{
		Valid:         true,
		NumNamespaces: len(s.Namespaces),
		NumNodeTypes:  len(s.NodeTypes),
	}
}

// Handler returns an http.Handler that upgrades each request to a websocket
// connection and answers every text message, one CND document per message,
// with a JSON Result. The connection stays open across checks until the
// client closes it.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if msgType != websocket.TextMessage {
				continue
			}
			if err := conn.WriteJSON(CheckDocument(string(data))); err != nil {
				return
			}
		}
	})
}
