// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/absmach/dataprotection/keyring"
	"github.com/spf13/cobra"
)

type document struct {
	Element string `json:"element"`
	ID      string `json:"id,omitempty"`
	XML     string `json:"xml"`
}

type documentsPage struct {
	Total     int        `json:"total"`
	Documents []document `json:"documents"`
}

func keysCmds(provider RepositoryProvider) []cobra.Command {
	return []cobra.Command{
		{
			Use:   "list",
			Short: "List key ring documents",
			Long: "List every document of the key ring, most recently appended first\n" +
				"Usage:\n" +
				"\tkeyring-cli keys list\n" +
				"\tkeyring-cli keys list --raw - prints one XML document per line\n",
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) != 0 {
					logUsageCmd(*cmd, cmd.Use)
					return
				}

				repo, err := provider.repository()
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}

				docs, err := repo.ReadAll(cmd.Context())
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}

				if RawOutput {
					for _, doc := range docs {
						fmt.Fprintln(cmd.OutOrStdout(), doc.String())
					}
					return
				}

				page := documentsPage{
					Total:     len(docs),
					Documents: make([]document, 0, len(docs)),
				}
				for _, doc := range docs {
					id, _ := doc.Attr("id")
					page.Documents = append(page.Documents, document{
						Element: doc.Name(),
						ID:      id,
						XML:     doc.String(),
					})
				}
				logJSONCmd(*cmd, page)
			},
		},
		{
			Use:   "append <xml> [label]",
			Short: "Append document",
			Long: "Append an XML document to the head of the key ring\n" +
				"For example:\n" +
				"\tkeyring-cli keys append '<key id=\"A\"/>' rotation\n",
			Run: func(cmd *cobra.Command, args []string) {
				if len(args) != 1 && len(args) != 2 {
					logUsageCmd(*cmd, cmd.Use)
					return
				}

				repo, err := provider.repository()
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}

				doc, err := keyring.ParseDocument(args[0])
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}

				label := Label
				if len(args) == 2 {
					label = args[1]
				}
				if err := repo.Append(cmd.Context(), doc, label); err != nil {
					logErrorCmd(*cmd, err)
					return
				}

				logOKCmd(*cmd)
			},
		},
	}
}

// NewKeysCmd returns keys command operating on the repository returned by
// provider.
func NewKeysCmd(provider RepositoryProvider) *cobra.Command {
	cmd := cobra.Command{
		Use:   "keys [list | append]",
		Short: "Key ring management",
		Long:  `Read and append data-protection key ring documents stored in Redis.`,
	}

	cmdKeys := keysCmds(provider)
	for i := range cmdKeys {
		cmd.AddCommand(&cmdKeys[i])
	}

	return &cmd
}
