// Package docs registers the OpenAPI document served under /docs.
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
        "/api/recaptcha-sitekey": {
            "get": {
                "produces": ["application/json"],
                "tags": ["redirect"],
                "summary": "reCAPTCHA site key",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.siteKeyResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/verify-recaptcha": {
            "post": {
                "description": "A failing verdict is answered with 400 and the verdict itself.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["redirect"],
                "summary": "Verify a reCAPTCHA token",
                "parameters": [
                    {"description": "Token", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.verifyCaptchaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.CaptchaVerdict"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/entity.CaptchaVerdict"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/redirect/issue": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["redirect"],
                "summary": "Issue a redirect token for a verified visit",
                "parameters": [
                    {"description": "Slug and reCAPTCHA token", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.issueRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.issueResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "description": "Sets the sealed Authorization-Token session cookie.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up as a user or an advertiser",
                "parameters": [
                    {"description": "New account", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/usecase.RegisterInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/links": {
            "get": {
                "produces": ["application/json"],
                "tags": ["links"],
                "summary": "Caller's short links",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.Link"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["links"],
                "summary": "Shorten a URL",
                "parameters": [
                    {"description": "Target URL", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createLinkRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/entity.Link"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/stats/dashboard": {
            "get": {
                "description": "Polled by the panel; a second poll inside the interval gets 429.",
                "produces": ["application/json"],
                "tags": ["links"],
                "summary": "Dashboard totals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.DashboardStats"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/blog": {
            "get": {
                "produces": ["application/json"],
                "tags": ["blog"],
                "summary": "Published blog posts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.BlogPost"}}}
                }
            }
        },
        "/api/contact/submit": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Send a message to the operators",
                "parameters": [
                    {"description": "Message", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/entity.ContactMessage"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.okResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/payments/withdraw": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payments"],
                "summary": "Request a payout",
                "parameters": [
                    {"description": "Withdrawal", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/entity.WithdrawalRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/entity.Payment"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/admin/admin-ads": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Add an ad",
                "parameters": [
                    {"description": "Ad", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/entity.AdminAd"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/entity.AdminAd"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/support/threads/{id}/messages": {
            "get": {
                "description": "Polled by the chat; a second poll inside the interval gets 429.",
                "produces": ["application/json"],
                "tags": ["support"],
                "summary": "Thread messages, optionally only newer than since",
                "parameters": [
                    {"type": "string", "description": "Thread id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Last seen message timestamp", "name": "since", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.SupportMessage"}}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/admin/redirect-attempts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Recent redirect verifications",
                "parameters": [
                    {"type": "integer", "description": "Max entries (default 50, max 500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.RedirectAttempt"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "httpserver.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "not_found"},
                "message": {"type": "string", "example": "link not found"}
            }
        },
        "http.okResponse": {
            "type": "object",
            "properties": {"ok": {"type": "boolean", "example": true}}
        },
        "http.siteKeyResponse": {
            "type": "object",
            "properties": {"siteKey": {"type": "string"}}
        },
        "http.verifyCaptchaRequest": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "http.issueRequest": {
            "type": "object",
            "properties": {
                "slug": {"type": "string", "example": "promo-2024"},
                "captchaToken": {"type": "string"}
            }
        },
        "http.issueResponse": {
            "type": "object",
            "properties": {
                "targetUrl": {"type": "string", "example": "https://example.org/offer"},
                "token": {"type": "string", "example": "c2lnbmVk"},
                "redirectUrl": {"type": "string", "example": "https://example.org/offer?t=c2lnbmVk"}
            }
        },
        "http.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "jane@example.org"},
                "password": {"type": "string"}
            }
        },
        "http.authResponse": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/entity.User"},
                "home": {"type": "string", "example": "/panel"}
            }
        },
        "http.createLinkRequest": {
            "type": "object",
            "properties": {
                "url": {"type": "string", "example": "https://example.org/landing"},
                "title": {"type": "string", "example": "Spring promo"}
            }
        },
        "usecase.RegisterInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["user", "advertiser"]}
            }
        },
        "entity.CaptchaVerdict": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "score": {"type": "number"},
                "action": {"type": "string"},
                "hostname": {"type": "string"},
                "errorCodes": {"type": "array", "items": {"type": "string"}}
            }
        },
        "entity.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["user", "advertiser", "admin"]},
                "balance": {"type": "string", "example": "12.50"}
            }
        },
        "entity.Link": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "slug": {"type": "string"},
                "title": {"type": "string"},
                "targetUrl": {"type": "string"},
                "shortUrl": {"type": "string"},
                "clicks": {"type": "integer"},
                "earnings": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "entity.DashboardStats": {
            "type": "object",
            "properties": {
                "clicks": {"type": "integer"},
                "earnings": {"type": "string"},
                "epc": {"type": "string"},
                "links": {"type": "integer"},
                "balance": {"type": "string"}
            }
        },
        "entity.BlogPost": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "slug": {"type": "string"},
                "title": {"type": "string"},
                "excerpt": {"type": "string"},
                "content": {"type": "string"},
                "coverImage": {"type": "string"},
                "published": {"type": "boolean"},
                "createdAt": {"type": "string"}
            }
        },
        "entity.ContactMessage": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "subject": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "entity.WithdrawalRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "string", "example": "25.00"},
                "method": {"type": "string", "example": "paypal"},
                "account": {"type": "string"}
            }
        },
        "entity.Payment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "amount": {"type": "string"},
                "method": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "approved", "rejected"]},
                "createdAt": {"type": "string"}
            }
        },
        "entity.AdminAd": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "imageUrl": {"type": "string"},
                "targetUrl": {"type": "string"},
                "placement": {"type": "string"},
                "active": {"type": "boolean"},
                "impressions": {"type": "integer"},
                "clicks": {"type": "integer"}
            }
        },
        "entity.SupportMessage": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "threadId": {"type": "string"},
                "author": {"type": "string"},
                "body": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "entity.RedirectAttempt": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "slug": {"type": "string"},
                "ip": {"type": "string"},
                "user_agent": {"type": "string"},
                "outcome": {"type": "string", "enum": ["issued", "captcha_failed", "not_found", "error"]},
                "reason": {"type": "string"},
                "created_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ClickPay web gateway",
	Description:      "Browser-facing gateway of the ClickPay link platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
