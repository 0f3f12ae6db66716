package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the
// directory service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>ngo-directory — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the directory endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "ngo-directory", "version": "v0.1.0" },
  "paths": {
    "/organizations": {
      "get": {
        "summary": "List active organizations, optionally filtered",
        "parameters": [
          { "name": "search", "in": "query", "schema": { "type": "string" }, "description": "substring match over name, description, address" },
          { "name": "category", "in": "query", "schema": { "type": "string" }, "description": "exact category; \"All\" means no filter" }
        ],
        "responses": { "200": { "description": "organizations ordered by rating desc, name asc" } }
      },
      "post": {
        "summary": "Create an organization",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","address","phone","category","description"],"properties":{"name":{"type":"string"},"address":{"type":"string"},"phone":{"type":"string"},"email":{"type":"string"},"website":{"type":"string"},"category":{"type":"string"},"description":{"type":"string"},"rating":{"type":"number"},"reviewCount":{"type":"integer"}}}}}},
        "responses": { "201": { "description": "id of the new organization" }, "400": { "description": "missing required field" } }
      }
    },
    "/organizations/{id}": {
      "get": { "summary": "Fetch one active organization", "responses": { "200": { "description": "organization" }, "404": { "description": "not found or inactive" } } },
      "put": { "summary": "Replace all mutable fields", "responses": { "200": { "description": "updated" }, "400": { "description": "missing required field" }, "404": { "description": "unknown id" } } },
      "delete": { "summary": "Soft-delete an organization", "responses": { "204": { "description": "deactivated" }, "404": { "description": "unknown id" } } }
    },
    "/admin/organizations": {
      "get": { "summary": "List all organizations including inactive, newest first", "responses": { "200": { "description": "organizations" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
