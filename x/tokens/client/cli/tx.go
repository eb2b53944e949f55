package cli

import (
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/openalpha/dex/x/tokens/types"
)

// GetTxCmd returns the transaction commands for the tokens module.
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Tokens module transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdIssueToken(),
	)

	return cmd
}

// CmdIssueToken returns the command to issue a new token.
func CmdIssueToken() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue [symbol] [total-supply]",
		Short: "Issue a new token, crediting the entire supply to the sender",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgIssueToken{
				Owner:       clientCtx.GetFromAddress().String(),
				Symbol:      args[0],
				TotalSupply: args[1],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
