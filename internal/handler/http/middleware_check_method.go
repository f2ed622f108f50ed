// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler. A
// recorder or operational path requested with a method it does not serve
// gets a bare 404 instead of chi's 405, so the routes do not advertise which
// methods they accept.
//
// Only static patterns are compared: "/calls/record/{callId}" never matches
// a concrete call path, so any wrong method there is a 404 as well.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !servesMethod(router.Routes(), r.URL.Path, r.Method) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func servesMethod(routes []chi.Route, path, method string) bool {
	for _, route := range routes {
		if route.Pattern != path {
			continue
		}
		_, ok := route.Handlers[method]
		return ok
	}
	return false
}
