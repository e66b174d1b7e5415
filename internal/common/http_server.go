package common

import (
	"fmt"
	"net/http"
)

type HttpServer struct {
	Done        chan Done
	Server      http.Server
	ServiceLogs chan<- ServiceLog
}

func (s *HttpServer) Start() error {
	s.ServiceLogs <- ServiceLogf(LogLevelInfo, "starting http server on %s...", s.Server.Addr)
	go func() {
		<-s.Done
		if err := s.Server.Close(); err != nil {
			s.ServiceLogs <- ServiceLogf(LogLevelError, "server closed: %s", err)
		}
	}()

	if err := s.Server.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %s", err)
	}
	return nil
}

type NewHttpServerOpts struct {
	Addr        string
	Done        chan Done
	Handler     http.Handler
	ServiceLogs chan<- ServiceLog
}

func NewHttpServer(opts NewHttpServerOpts) (*HttpServer, error) {
	logger := GetRequestLoggerMiddleware(opts.ServiceLogs)
	metrics := GetCommonMetricsMiddleware(opts.ServiceLogs)

	handler := logger(metrics(opts.Handler))

	return &HttpServer{
		Done: opts.Done,
		Server: http.Server{
			Addr:              opts.Addr,
			Handler:           handler,
			IdleTimeout:       DefaultDurationConnectionTimeout,
			ReadTimeout:       DefaultDurationConnectionTimeout,
			ReadHeaderTimeout: DefaultDurationConnectionTimeout,
			WriteTimeout:      DefaultDurationConnectionTimeout,
		},
		ServiceLogs: opts.ServiceLogs,
	}, nil
}
