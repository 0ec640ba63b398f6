// Package docs holds the swagger spec served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/assignments": {
            "get": {
                "tags": ["Assignments"],
                "summary": "List assignments filtered and sorted for display",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "enum": ["all", "Pending", "In Progress", "Completed", "Overdue"]},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["dueDate", "dueDateDesc", "title", "assignee"]}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Assignments"],
                "summary": "Create an assignment (status starts at Pending)",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/assignments/{id}/actions": {
            "post": {
                "tags": ["Assignments"],
                "summary": "Apply start, complete, pend or reopen to an assignment",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/assignments/{id}": {
            "delete": {
                "tags": ["Assignments"],
                "summary": "Delete an assignment (requires confirm=true)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "confirm", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/assignments/stats": {
            "get": {
                "tags": ["Assignments"],
                "summary": "Aggregate completion and per-member workload counts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/team-members": {
            "get": {
                "tags": ["Team Members"],
                "summary": "List the team roster",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Team Members"],
                "summary": "Add a team member",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/api/documents": {
            "get": {
                "tags": ["Calendar"],
                "summary": "List documents with their review types",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/review-types": {
            "get": {
                "tags": ["Calendar"],
                "summary": "List review types",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/calendar": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Documents grouped by due date",
                "parameters": [{"name": "month", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/reminders": {
            "get": {
                "tags": ["Reminders"],
                "summary": "List reminder log entries",
                "parameters": [
                    {"name": "document_id", "in": "query", "type": "string"},
                    {"name": "reviewer_id", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Reminders"],
                "summary": "Record a reminder for a document and reviewer",
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/reminders/{id}": {
            "put": {
                "tags": ["Reminders"],
                "summary": "Update the delivery status of a reminder",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/reminders/settings": {
            "get": {
                "tags": ["Reminders"],
                "summary": "Read the reminder frequency",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["Reminders"],
                "summary": "Set the reminder frequency",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Review Dashboard API",
	Description:      "API for tracking review assignments, rendering the document review calendar and inspecting reminder logs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
