// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, the session, licence and conversation
// services, and the background token refresh into a single process
// lifecycle.
package client
