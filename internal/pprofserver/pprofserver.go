package pprofserver

import (
	"log/slog"
	"net/http"
	"net/http/pprof"
)

func newServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	return mux
}

// Launch starts a standard pprof server on the given loopback address.
//
// The caller is expected to pass a localhost address so that the profiling
// endpoints are not open to the world.
func Launch(addr string, logger *slog.Logger) {
	go func() {
		logger.Info("starting pprof server", "addr", addr)
		server := &http.Server{ //nolint:gosec // not exposed to untrusted clients
			Addr:    addr,
			Handler: newServeMux(),
		}
		if err := server.ListenAndServe(); err != nil {
			logger.Error(err.Error())
		}
	}()
}
