// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// probedMethods are the methods checked when building the Allow header.
var probedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// notFound writes the 404 error envelope for unknown routes.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrNotFound)
}

// CheckHTTPMethod returns the handler registered via
// [chi.Mux.MethodNotAllowed]. It answers with 405 in the error envelope and
// an Allow header listing the methods the matched path does accept.
//
// The allowed methods are discovered by matching the raw request path against
// router for every method in probedMethods, so parameterised routes such as
// "/users/{id}" are covered as well.
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := make([]string, 0, len(probedMethods))
		for _, method := range probedMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) == 0 {
			notFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		writeError(w, r, ErrMethodNotAllowed)
	}
}
