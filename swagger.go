package main

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// ginPathToSwaggerPath converts Gin path params :param to Swagger {param}
var ginPathParamRe = regexp.MustCompile(`:([^/]+)`)

func ginPathToSwaggerPath(path string) string {
	return ginPathParamRe.ReplaceAllString(path, "{$1}")
}

var errorSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"error":  map[string]interface{}{"type": "string"},
		"fields": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
	},
}

var swaggerDefinitions = map[string]interface{}{
	"FieldEvent": map[string]interface{}{
		"type":     "object",
		"required": []string{"section"},
		"properties": map[string]interface{}{
			"section": map[string]interface{}{"type": "string", "example": "landDetails"},
			"action":  map[string]interface{}{"type": "string", "enum": []string{"set", "add", "remove", "generate"}},
			"row":     map[string]interface{}{"type": "integer", "example": 1},
			"sub_row": map[string]interface{}{"type": "integer"},
			"field":   map[string]interface{}{"type": "string", "example": "documented"},
			"value":   map[string]interface{}{"example": "1000.5"},
		},
	},
	"EventResponse": map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"section": map[string]interface{}{"type": "string", "example": "landDetails"},
			"data":    map[string]interface{}{"type": "object"},
			"record":  map[string]interface{}{"type": "object"},
			"row":     map[string]interface{}{"type": "integer"},
		},
	},
}

// buildSwaggerFromRoutes serves Swagger 2.0 JSON built from the registered routes. It is the
// fallback when no generated doc has been registered with swag.
func buildSwaggerFromRoutes(engine *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		paths := make(map[string]interface{})
		for _, route := range engine.Routes() {
			if strings.HasPrefix(route.Path, "/swagger") {
				continue
			}
			path := ginPathToSwaggerPath(route.Path)
			if paths[path] == nil {
				paths[path] = make(map[string]interface{})
			}
			method := strings.ToLower(route.Method)
			tag := "api"
			if parts := strings.Split(strings.TrimPrefix(route.Path, "/api/"), "/"); len(parts) > 0 {
				tag = parts[0]
			}

			op := map[string]interface{}{
				"summary":  route.Method + " " + route.Path,
				"tags":     []string{tag},
				"produces": []string{"application/json"},
				"responses": map[string]interface{}{
					"200": map[string]interface{}{"description": "Success"},
					"400": map[string]interface{}{"description": "Bad Request", "schema": errorSchema},
					"404": map[string]interface{}{"description": "Not Found", "schema": errorSchema},
					"422": map[string]interface{}{"description": "Missing required fields", "schema": errorSchema},
				},
			}
			if strings.HasSuffix(route.Path, "/events") {
				op["consumes"] = []string{"application/json"}
				op["parameters"] = []map[string]interface{}{{
					"in":       "body",
					"name":     "body",
					"required": true,
					"schema":   map[string]interface{}{"$ref": "#/definitions/FieldEvent"},
				}}
				op["responses"].(map[string]interface{})["200"] = map[string]interface{}{
					"description": "Section payload and record",
					"schema":      map[string]interface{}{"$ref": "#/definitions/EventResponse"},
				}
			}
			if strings.Contains(route.Path, ":id") && method != "get" {
				op["security"] = []map[string][]string{{"BearerAuth": {}}}
			}

			(paths[path].(map[string]interface{}))[method] = op
		}
		doc := map[string]interface{}{
			"swagger":     "2.0",
			"definitions": swaggerDefinitions,
			"info": map[string]interface{}{
				"title":       "Property Valuation API",
				"description": "Field-event API of the property valuation form.",
				"version":     "1.0",
			},
			"securityDefinitions": map[string]interface{}{
				"BearerAuth": map[string]interface{}{"type": "apiKey", "in": "header", "name": "Authorization"},
			},
			"host":     c.Request.Host,
			"basePath": "/",
			"schemes":  []string{"http", "https"},
			"paths":    paths,
		}
		c.JSON(http.StatusOK, doc)
	}
}

// swaggerHandler serves the generated doc when one is registered, the route-built doc otherwise,
// and the Swagger UI for everything else.
func swaggerHandler(engine *gin.Engine) gin.HandlerFunc {
	fromRoutes := buildSwaggerFromRoutes(engine)
	ui := ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"))
	return func(c *gin.Context) {
		if c.Param("any") == "/doc.json" {
			if doc, err := swag.ReadDoc("swagger"); err == nil {
				c.Header("Content-Type", "application/json")
				c.String(http.StatusOK, doc)
				return
			}
			fromRoutes(c)
			return
		}
		ui(c)
	}
}
