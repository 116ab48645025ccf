package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the lists API.
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
    <title>todolists - Swagger</title>
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

// Minimal OpenAPI document for the list endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "todolists", "version": "v0.1.0" },
  "components": {
    "schemas": {
      "Item": { "type": "object", "properties": { "id": {"type":"string"}, "name": {"type":"string"} } },
      "List": { "type": "object", "properties": { "id": {"type":"string"}, "name": {"type":"string"}, "items": {"type":"array","items":{"$ref":"#/components/schemas/Item"}} } },
      "NewItem": { "type": "object", "required": ["name"], "properties": { "name": {"type":"string"}, "list": {"type":"string"} } }
    }
  },
  "paths": {
    "/api/lists": {
      "get": { "summary": "Default list (seeded on first read)", "responses": { "200": { "description": "list" }, "503": { "description": "store unavailable" } } }
    },
    "/api/lists/{name}": {
      "get": { "summary": "Get or create a list by name", "parameters": [{"name":"name","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "list" } } }
    },
    "/api/lists/{name}/items": {
      "post": { "summary": "Append an item to a list", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/NewItem"}}}}, "responses": { "201": { "description": "updated list" }, "400": { "description": "invalid item" } } }
    },
    "/api/lists/{name}/items/{id}": {
      "delete": { "summary": "Check off (remove) an item", "responses": { "200": { "description": "updated list" } } }
    },
    "/api/lists/{name}/archive": {
      "post": { "summary": "Archive a list snapshot to object storage", "responses": { "201": { "description": "receipt with presigned url" }, "503": { "description": "archiving not configured" } } }
    },
    "/api/items": {
      "post": { "summary": "Add an item; list defaults to Today", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/NewItem"}}}}, "responses": { "201": { "description": "updated list" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
