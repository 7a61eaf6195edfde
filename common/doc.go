// Package common contains the data structures and utilities shared by all
// kvwire packages: the client configuration, the logging setup and the
// error taxonomy of the transport core.
//
// The package focuses on:
//   - Defining the ClientConfig structure with socket and TCP tuning options
//   - Providing a custom logger factory with uniform formatting
//   - Defining the typed errors surfaced by the connection and wire layers
//
// Key Components:
//
//   - ClientConfig: configuration for dialing and validating connections,
//     including the connect timeout and the maximum socket idle window.
//
//   - ConnectionError / ParameterError / ErrUnexpectedEOF: the error types
//     callers are expected to match on.
//
//   - CreateLogger / InitLoggers: logger factory and level configuration.
package common
