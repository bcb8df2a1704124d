// Package versions exposes version parsing, checking, and sorting
// over HTTP.
//
// The handlers are plain http.HandlerFunc values intended to be
// registered with the server package, which supplies middleware,
// rate limiting, and metrics:
//
//	svc := versions.NewService()
//	s := server.New(server.WithHandler(map[string]http.HandlerFunc{
//		"/v1/version/parse": svc.HandleParse,
//		"/v1/version/check": svc.HandleCheck,
//		"/v1/version/sort":  svc.HandleSort,
//	}))
//
// All responses are JSON. Versions are echoed back in canonical
// normalized form regardless of the input spelling.
package versions
