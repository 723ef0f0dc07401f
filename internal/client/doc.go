// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the backend session, drives the login and dashboard flows of
// the terminal UI and keeps the token refresher running for the lifetime of
// the process.
package client
