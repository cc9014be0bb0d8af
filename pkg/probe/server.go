package probe

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"event_finder/pkg/httpx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Options are echoed back by both probes.
type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Server answers liveness on /healthz and readiness on /ready.
type Server struct {
	listenAddress string
	state         []byte
	ready         func() bool
}

// NewServer builds the probe server. /ready answers 503 until ready reports
// true; a nil ready means the service is ready as soon as it listens.
func NewServer(listenAddress string, options Options, ready func() bool) Server {
	stateJSON, _ := json.Marshal(options) //nolint:errcheck,errchkjson

	return Server{
		listenAddress: listenAddress,
		state:         stateJSON,
		ready:         ready,
	}
}

func (s Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		s.write(w, http.StatusOK)
	})

	mux.HandleFunc("GET /ready", func(w http.ResponseWriter, _ *http.Request) {
		if s.ready != nil && !s.ready() {
			s.write(w, http.StatusServiceUnavailable)
			return
		}
		s.write(w, http.StatusOK)
	})

	return mux
}

func (s Server) Run(ctx context.Context) error {
	return httpx.Serve(ctx, "probe", httpx.NewServer(ctx, s.listenAddress, s.Handler()), 0)
}

func (s Server) write(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(s.state) //nolint:errcheck
}
