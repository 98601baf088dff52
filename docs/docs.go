// Package docs holds the Swagger document served under /swagger. It is maintained by hand
// from the handler annotations; docs_test.go fails when a routed path is missing here.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/analytics/companies/{id}/skills/matrix": {
            "get": {
                "description": "Per-skill total and average across company users",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Skills matrix summary",
                "parameters": [
                    {"type": "string", "description": "Company ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wrapper.ResponseWrapper"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}}
                }
            }
        },
        "/analytics/home": {
            "get": {
                "description": "Week around the selected day, pooled with direct reports for managers",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Home dashboard",
                "parameters": [
                    {"type": "string", "description": "Selected day (YYYY-MM-DD), defaults to today", "name": "date", "in": "query"},
                    {"type": "boolean", "description": "Add a trendline series", "name": "trendline", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wrapper.ResponseWrapper"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}}
                }
            }
        },
        "/analytics/teams/{id}/series": {
            "get": {
                "description": "Daily-average team series with weekday averages and critical days",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Team series",
                "parameters": [
                    {"type": "string", "description": "Team ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "lastWeek, lastMonth, lastYear, calendar or anchored", "name": "window", "in": "query"},
                    {"type": "string", "description": "Calendar window start (YYYY-MM-DD)", "name": "start", "in": "query"},
                    {"type": "string", "description": "Calendar window end (YYYY-MM-DD)", "name": "end", "in": "query"},
                    {"type": "string", "description": "sentiment, green, orange, red or length", "name": "metric", "in": "query"},
                    {"type": "string", "description": "daily_average or pooled", "name": "policy", "in": "query"},
                    {"type": "boolean", "description": "Add a trendline series", "name": "trendline", "in": "query"},
                    {"type": "boolean", "description": "Add weekday averages, on by default", "name": "weekday", "in": "query"},
                    {"type": "boolean", "description": "Add the critical series, on by default", "name": "critical", "in": "query"},
                    {"type": "number", "description": "Critical threshold override", "name": "threshold", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wrapper.ResponseWrapper"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}}
                }
            }
        },
        "/analytics/teams/{id}/summary": {
            "get": {
                "description": "Member count and the average of daily merged scores over all snippets",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Team summary",
                "parameters": [
                    {"type": "string", "description": "Team ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wrapper.ResponseWrapper"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}}
                }
            }
        },
        "/analytics/users/{id}/series": {
            "get": {
                "description": "Chart series for one user",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "User series",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "lastWeek, lastMonth, lastYear, calendar or anchored", "name": "window", "in": "query"},
                    {"type": "string", "description": "Calendar window start (YYYY-MM-DD)", "name": "start", "in": "query"},
                    {"type": "string", "description": "Calendar window end (YYYY-MM-DD)", "name": "end", "in": "query"},
                    {"type": "string", "description": "Anchored window day (YYYY-MM-DD)", "name": "anchor", "in": "query"},
                    {"type": "string", "description": "sentiment, green, orange, red or length", "name": "metric", "in": "query"},
                    {"type": "string", "description": "none, daily_average or pooled", "name": "policy", "in": "query"},
                    {"type": "boolean", "description": "Add a trendline series", "name": "trendline", "in": "query"},
                    {"type": "boolean", "description": "Add weekday averages", "name": "weekday", "in": "query"},
                    {"type": "boolean", "description": "Add the critical series", "name": "critical", "in": "query"},
                    {"type": "number", "description": "Critical threshold override", "name": "threshold", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wrapper.ResponseWrapper"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}}
                }
            }
        },
        "/analytics/users/{id}/skills": {
            "get": {
                "description": "Latest rating per company skill, unrated skills score 0",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Skills radar",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wrapper.ResponseWrapper"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}}
                }
            }
        },
        "/analytics/users/{id}/skills/history": {
            "get": {
                "description": "One series per rated skill, a point per rating",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Skill rating history",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wrapper.ResponseWrapper"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}}
                }
            }
        },
        "/users/auth": {
            "post": {
                "description": "Check email and password and set the token cookie",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Authenticate user with password",
                "parameters": [
                    {"description": "Credentials", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.Login"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wrapper.ResponseWrapper"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}}
                }
            }
        },
        "/users/logout": {
            "post": {
                "description": "Logout user by clearing authentication cookie",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Logout user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wrapper.SuccessWrapper"}}
                }
            }
        },
        "/users/profile": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Current user profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/wrapper.ResponseWrapper"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/wrapper.ErrorWrapper"}}
                }
            }
        }
    },
    "definitions": {
        "request.Login": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "wrapper.ErrorWrapper": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "wrapper.ResponseWrapper": {
            "type": "object",
            "properties": {
                "data": {},
                "success": {"type": "boolean"}
            }
        },
        "wrapper.SuccessWrapper": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Snippet analytics API",
	Description:      "Sentiment charts, team analytics and skills summaries over daily snippets",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
