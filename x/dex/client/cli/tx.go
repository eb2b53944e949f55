package cli

import (
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/openalpha/dex/x/dex/types"
)

// GetTxCmd returns the transaction commands for the dex module.
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Matching engine transaction commands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdCreateTradePair(),
		CmdCreateOrder(),
		CmdCancelOrder(),
	)

	return cmd
}

// CmdCreateTradePair returns the command to open a new trade pair.
func CmdCreateTradePair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-trade-pair [base-hash] [quote-hash]",
		Short: "Open a trade pair between two tokens, at least one of them owned by the sender",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgCreateTradePair{
				Sender: clientCtx.GetFromAddress().String(),
				Base:   args[0],
				Quote:  args[1],
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

// CmdCreateOrder returns the command to submit a limit or market order.
func CmdCreateOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-order [base-hash] [quote-hash] [kind] [side] [price] [sell-amount]",
		Short: "Submit a limit or market order (kind: limit|market, side: buy|sell)",
		Long:  "Submit an order. For market orders, price is ignored but a placeholder (e.g. 0) must still be given.",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			kind, err := parseKind(args[2])
			if err != nil {
				return err
			}
			side, err := parseSide(args[3])
			if err != nil {
				return err
			}

			msg := &types.MsgCreateOrder{
				Sender:     clientCtx.GetFromAddress().String(),
				Base:       args[0],
				Quote:      args[1],
				Kind:       int32(kind),
				Side:       int32(side),
				Price:      args[4],
				SellAmount: args[5],
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

// CmdCancelOrder returns the command to cancel a resting order.
func CmdCancelOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel-order [order-hash]",
		Short: "Cancel a not-yet-finished order owned by the sender",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgCancelOrder{
				Sender:    clientCtx.GetFromAddress().String(),
				OrderHash: args[0],
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

func parseKind(s string) (types.OrderKind, error) {
	switch s {
	case "limit":
		return types.OrderKindLimit, nil
	case "market":
		return types.OrderKindMarket, nil
	default:
		return 0, types.ErrBoundsCheckFailed.Wrapf("unknown order kind %q, want limit|market", s)
	}
}

func parseSide(s string) (types.Side, error) {
	switch s {
	case "buy":
		return types.SideBuy, nil
	case "sell":
		return types.SideSell, nil
	default:
		return 0, types.ErrBoundsCheckFailed.Wrapf("unknown side %q, want buy|sell", s)
	}
}
