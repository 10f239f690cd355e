// Copyright 2026 Bazaar Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/bazaarlabs/seller-service/cmd"

func main() {
	cmd.Execute()
}
