package httpapi

import (
    "net/http"
)

const landingPage = `
    <html>
        <head>
            <title>FastAPI Hello World</title>
        </head>
        <body>
            <h1>Hello World from FastAPI!</h1>
            <p>This is a simple FastAPI application deployed on AWS Amplify.</p>
        </body>
    </html>
    `

type helloResponse struct {
    Message string `json:"message"`
    Status  string `json:"status"`
}

type healthResponse struct {
    Status  string `json:"status"`
    Service string `json:"service"`
}

var (
    helloPayload  = helloResponse{Message: "Hello World!", Status: "success"}
    healthPayload = healthResponse{Status: "healthy", Service: "FastAPI Hello World"}
)

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
    toHTML(w, http.StatusOK, landingPage)
}

func (s *Server) hello(w http.ResponseWriter, r *http.Request) {
    toJSON(w, http.StatusOK, helloPayload)
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
    toJSON(w, http.StatusOK, healthPayload)
}
