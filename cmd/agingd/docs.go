// General API documentation for swaggo. Regenerate internal/httpapi/docs with:
//
//	swag init -g cmd/agingd/docs.go -d ./,./internal/httpapi -o internal/httpapi/docs
//
// @title           agingd API
// @version         1.0
// @description     Demographic sample selection and face aging, morphing and kids generation.
//
// @contact.name   agingd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
package main
