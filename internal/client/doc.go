// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements swiftctl, the command line client of the
// swift-codes service.
//
// Commands talk to the server through [adapter.SwiftCodesClient] and print
// indented JSON on stdout. Diagnostics go to the logger on stderr.
package client
