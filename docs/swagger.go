// Package docs AssetDesk API documentation
package docs

// Swagger documentation info
// @title AssetDesk API
// @version 1.0
// @description Central API documentation for the AssetDesk services
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@assetdesk.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8001
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

// Asset Service Endpoints
// @tag.name files
// @tag.description File upload, listing, download and deletion
// @tag.name organizations
// @tag.description Organization management
// @tag.name invitations
// @tag.description Organization member invitations
// @tag.name personas
// @tag.description Persona management
// @tag.name evidences
// @tag.description Installation evidence photos
// @tag.name reports
// @tag.description Saved report layouts
// @tag.name workflow
// @tag.description File workflow stage machine
// @tag.name emails
// @tag.description Transactional email dispatch

// Notification Service Endpoints
// @tag.name email
// @tag.description Email delivery
// @tag.name notifications
// @tag.description In-app notifications
// @tag.name websocket
// @tag.description Real-time notification push
