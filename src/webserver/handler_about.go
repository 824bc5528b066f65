package webserver

import (
	"net/http"

	"github.com/ironsmile/mosaic/src/version"
	"github.com/ironsmile/mosaic/src/webserver/webutils"
)

type aboutHandler struct {
	resp aboutResponse
}

// NewAboutHandler returns the HTTP handler which shows a JSON with information
// about the server.
func NewAboutHandler() http.Handler {
	return &aboutHandler{
		resp: aboutResponse{
			ServerVersion: version.Version,
		},
	}
}

func (h *aboutHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	webutils.JSONResponse(writer, h.resp)
}

type aboutResponse struct {
	ServerVersion string `json:"server_version"`
}
