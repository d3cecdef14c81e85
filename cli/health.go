// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/absmach/dataprotection"
	"github.com/absmach/dataprotection/pkg/errors"
	"github.com/spf13/cobra"
)

var errFetchHealth = errors.New("failed to fetch health check")

// NewHealthCmd returns health check command.
func NewHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Health Check",
		Long: "Key ring service Health Check\n" +
			"usage:\n" +
			"\tkeyring-cli health --service-url http://localhost:9030",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}
			h, err := fetchHealth(cmd, ServiceURL)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, h)
		},
	}
}

func fetchHealth(cmd *cobra.Command, serviceURL string) (dataprotection.HealthInfo, error) {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, fmt.Sprintf("%s/health", serviceURL), nil)
	if err != nil {
		return dataprotection.HealthInfo{}, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return dataprotection.HealthInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return dataprotection.HealthInfo{}, errors.Wrap(errFetchHealth, errors.New(resp.Status))
	}

	var h dataprotection.HealthInfo
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
		return dataprotection.HealthInfo{}, err
	}

	return h, nil
}
