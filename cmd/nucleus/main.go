package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/paycrest/nucleus-go/config"
	"github.com/paycrest/nucleus-go/services/nucleus"
	"github.com/paycrest/nucleus-go/types"
	"github.com/paycrest/nucleus-go/utils/logger"
)

const usage = `usage: nucleus [flags] <command> <address>

commands:
  kyc-status <wallet>    KYC status of a user
  user <wallet>          user record
  kyb-status <multisig>  KYB status of a DAO
  dao <multisig>         DAO record
  cards <wallet>         consumer cards of a card holder
  balance <multisig>     DAO corporate card balance
`

// query runs one read-only lookup for an address
type query func(ctx context.Context, client *nucleus.Client, address string) (interface{}, error)

var commands = map[string]query{
	"kyc-status": func(ctx context.Context, client *nucleus.Client, address string) (interface{}, error) {
		return client.GetKYCStatus(ctx, address)
	},
	"user": func(ctx context.Context, client *nucleus.Client, address string) (interface{}, error) {
		return client.GetUser(ctx, address)
	},
	"kyb-status": func(ctx context.Context, client *nucleus.Client, address string) (interface{}, error) {
		return client.GetKYBStatus(ctx, address)
	},
	"dao": func(ctx context.Context, client *nucleus.Client, address string) (interface{}, error) {
		return client.GetDAO(ctx, address)
	},
	"cards": func(ctx context.Context, client *nucleus.Client, address string) (interface{}, error) {
		return client.ListConsumerCards(ctx, types.ListConsumerCardsRequest{
			ConsumerRouting: types.ConsumerRouting{CardHolderWalletAddress: address},
		})
	},
	"balance": func(ctx context.Context, client *nucleus.Client, address string) (interface{}, error) {
		return client.GetDAOCardsBalance(ctx, types.GetDAOCardsBalanceRequest{
			CorporateRouting: types.CorporateRouting{DAOMultisigAddress: address},
		})
	},
}

func main() {
	flags := flag.NewFlagSet("nucleus", flag.ExitOnError)
	timeout := flags.Duration("timeout", 0, "overall deadline for the call, e.g. 10s")
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), usage)
		flags.PrintDefaults()
	}
	_ = flags.Parse(os.Args[1:])

	if err := config.SetupConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(config.ServerConfig(), nil); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	client, err := nucleus.NewClientFromEnv()
	if err != nil {
		logger.Errorf("nucleus client: %v", nil, err)
		os.Exit(1)
	}

	os.Exit(run(client, flags.Args(), *timeout, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit status
func run(client *nucleus.Client, args []string, timeout time.Duration, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := cmd(ctx, client, args[1])
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", args[0], err)
		return 1
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		fmt.Fprintf(stderr, "encoding result: %v\n", err)
		return 1
	}
	return 0
}
