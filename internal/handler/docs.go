package handler

import (
	"net/http"
)

const docsPage = `<!DOCTYPE html>
<html lang="en">
  <head><meta charset="UTF-8"><title>API Documentation</title></head>
  <body>
    <h1>REST API Documentation</h1>
    <ul>
      <li><strong>POST</strong> /register - Create a user account</li>
      <li><strong>POST</strong> /login - Log in and receive a JWT</li>
      <li><strong>GET</strong> /products - List all products (requires JWT)</li>
      <li><strong>GET</strong> /products/:id - Fetch one product (requires JWT)</li>
      <li><strong>POST</strong> /products - Create a product (requires JWT)</li>
      <li><strong>PUT</strong> /products/:id - Update a product (requires JWT)</li>
      <li><strong>DELETE</strong> /products/:id - Delete a product (requires JWT)</li>
    </ul>
  </body>
</html>
`

// HandleDocs serves GET / with a static endpoint listing.
func HandleDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(docsPage))
}
