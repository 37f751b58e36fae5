// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package main runs the gradient-connect command.
//
// The main package stamps the release version, installs SIGINT/SIGTERM
// handling and hands the process streams to the cli package. An interrupt
// ends the run with exit status 0.
package main
