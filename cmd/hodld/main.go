package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hodl4me/hodl"
	hodld "github.com/hodl4me/hodl/cmd/hodld/app"
	"github.com/hodl4me/hodl/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome     = "home"
	flagLogLevel = "log_level"
	varHome      *string
	varLogLevel  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".hodl")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
	varLogLevel = flag.String(flagLogLevel, "info", "lowest level logged: debug, info, error or none")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("hodl")
	fmt.Println("          Time-locked deposit vault node")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("start     Run the abci server")
	fmt.Println("getblock  Extract a block from blockchain.db")
	fmt.Println("validate  Parse the app_state of genesis files")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.hodl")
  -log_level string
        lowest level logged: debug, info, error or none (default "info")`)
}

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "hodl")

	flag.Parse()
	level, err := log.AllowLevel(*varLogLevel)
	if err != nil {
		fmt.Printf("Error: %s\n\n", err)
		helpMessage()
		os.Exit(1)
	}
	logger = log.NewFilter(logger, level)

	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(hodld.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(hodld.GenerateApp, logger, *varHome, rest)
	case "getblock":
		err = server.GetBlockCmd(hodld.TxDecoder, logger, os.Stdout, rest)
	case "validate":
		err = server.ValidateGenesis(hodld.Initializers(), rest)
	case "version":
		fmt.Println(hodl.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
