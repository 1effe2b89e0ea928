// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the client-side authentication session state: the
// single in-flight token refresh, the session generation and the
// "session expired" teardown.
//
// A [Manager] is created once per process and shared by the transport
// interceptors and the auth service. At most one refresh runs at a time;
// every request that observes a refresh in progress waits for its outcome
// instead of starting another one. A successful refresh advances the
// generation, so a request that was sent before the refresh finished can
// replay without refreshing again. A failed refresh tears the session down
// exactly once: registered hooks run (clearing the cached user) and the
// [Navigator] is asked to redirect to the login screen.
package session
