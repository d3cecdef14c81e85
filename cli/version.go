// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"github.com/absmach/dataprotection"
	"github.com/spf13/cobra"
)

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

// NewVersionCmd returns version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Key ring CLI version",
		Long:  `Key ring CLI version`,
		Run: func(cmd *cobra.Command, _ []string) {
			logJSONCmd(*cmd, versionInfo{
				Version:   dataprotection.Version,
				Commit:    dataprotection.Commit,
				BuildTime: dataprotection.BuildTime,
			})
		},
	}
}
