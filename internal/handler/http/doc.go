// Package http implements the REST API of the QR payload server.
//
// Routes cover payload validation and building, style presets and the
// saved payload history. Every request passes through panic recovery,
// trace id propagation, access logging and gzip compression before it
// reaches the service layer. Service errors are mapped to status codes in
// errors_mapper.go.
package http
