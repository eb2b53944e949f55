package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/openalpha/dex/x/dex/types"
)

// GetQueryCmd returns the cli query commands for the dex module.
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the matching engine",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		CmdQueryTradePair(),
		CmdQueryOrder(),
		CmdQueryBestPrices(),
		CmdQueryRecentTrades(),
		CmdQueryOrderBookDepth(),
	)

	return cmd
}

// CmdQueryTradePair returns the command to look up a trade pair by its
// unordered {base, quote} pair.
func CmdQueryTradePair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade-pair [base-hash] [quote-hash]",
		Short: "Query the trade pair for a {base, quote} token pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.TradePair(cmd.Context(), &types.QueryTradePairRequest{Base: args[0], Quote: args[1]})
			if err != nil {
				return err
			}
			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryOrder returns the command to look up an order by hash.
func CmdQueryOrder() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order [hash]",
		Short: "Query an order by hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.Order(cmd.Context(), &types.QueryOrderRequest{Hash: args[0]})
			if err != nil {
				return err
			}
			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryBestPrices returns the command to read a pair's current best
// bid and ask.
func CmdQueryBestPrices() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "best-prices [base-hash] [quote-hash]",
		Short: "Query the current best bid and ask for a trade pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			res, err := queryClient.BestPrices(cmd.Context(), &types.QueryBestPricesRequest{Base: args[0], Quote: args[1]})
			if err != nil {
				return err
			}
			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryRecentTrades returns the command to list a pair's most recent
// trades, newest first.
func CmdQueryRecentTrades() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent-trades [base-hash] [quote-hash] [limit]",
		Short: "Query the most recent trades for a trade pair",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			limit, err := parseLimit(args[2])
			if err != nil {
				return err
			}

			res, err := queryClient.RecentTrades(cmd.Context(), &types.QueryRecentTradesRequest{
				Base: args[0], Quote: args[1], Limit: limit,
			})
			if err != nil {
				return err
			}
			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// CmdQueryOrderBookDepth returns the command to read a pair's aggregated
// order book depth, up to depth price levels per side (0 meaning all).
func CmdQueryOrderBookDepth() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order-book-depth [base-hash] [quote-hash] [depth]",
		Short: "Query aggregated order book depth for a trade pair",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			queryClient := types.NewQueryClient(clientCtx)

			depth, err := parseLimit(args[2])
			if err != nil {
				return err
			}

			res, err := queryClient.OrderBookDepth(cmd.Context(), &types.QueryOrderBookDepthRequest{
				Base: args[0], Quote: args[1], Depth: depth,
			})
			if err != nil {
				return err
			}
			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func parseLimit(s string) (uint32, error) {
	limit, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, types.ErrBoundsCheckFailed.Wrapf("invalid limit %q: %s", s, err)
	}
	return uint32(limit), nil
}
