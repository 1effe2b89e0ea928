// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the hr-client command-line application.
//
// Each invocation restores the cached user, runs one command against the HR
// API through the client services and prints the result as JSON. When the
// session cannot be recovered the user is sent back to login: a message
// naming the command to retry goes to stderr and the process exits with
// code 2.
package client
