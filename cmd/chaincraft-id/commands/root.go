package commands

import (
	"fmt"
	"os"

	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"chaincraft/internal/app"
	"chaincraft/internal/crypto"
	"chaincraft/internal/peerid"
)

var (
	home          string
	seedPhrase    string
	newPeerID     bool
	readPeerID    bool
	suggestSeed   bool
	showMultiaddr bool

	log    = logrus.New()
	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "chaincraft-id",
		Short: "Manage the local chaincraft peer identity",
		Long: "chaincraft-id generates and reads the long-term keypair that names\n" +
			"this node in the chaincraft network. The private key is stored under\n" +
			"~/.chaincraft/keypair.key with owner-only permissions.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if lvl, err := logrus.ParseLevel(os.Getenv("CHAINCRAFT_LOG")); err == nil {
				log.SetLevel(lvl)
			}
			appCtx = app.New(app.Config{Home: home})
		},
		RunE: run,
	}

	root.Flags().BoolVarP(&newPeerID, "new-peer-id", "n", false, "generate a new identity and print its peer ID")
	root.Flags().BoolVarP(&readPeerID, "read-peer-id", "r", false, "print the peer ID of the stored identity")
	root.Flags().BoolVar(&suggestSeed, "suggest-seed", false, "print a fresh BIP-39 mnemonic usable as a seed phrase")
	root.Flags().StringVarP(&seedPhrase, "seed-phrase", "s", "", "seed phrase for deterministic generation (empty means random)")
	root.Flags().BoolVar(&showMultiaddr, "multiaddr", false, "also print the identity as a /p2p/ multiaddr")
	root.PersistentFlags().StringVar(&home, "home", "", "home dir override (default: the user's home)")

	root.MarkFlagsOneRequired("new-peer-id", "read-peer-id", "suggest-seed")
	root.MarkFlagsMutuallyExclusive("new-peer-id", "read-peer-id", "suggest-seed")

	return root.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	switch {
	case suggestSeed:
		phrase, err := crypto.SuggestSeedPhrase()
		if err != nil {
			return fmt.Errorf("suggesting seed phrase: %w", err)
		}
		fmt.Println(phrase)
		return nil

	case newPeerID:
		log.WithField("deterministic", seedPhrase != "").Debug("generating new identity")
		id, err := appCtx.Identity.Generate(seedPhrase)
		if err != nil {
			return fmt.Errorf("generating peer ID: %w", err)
		}
		return printID(id)

	default: // read-peer-id
		id, err := appCtx.Identity.Read()
		if err != nil {
			return fmt.Errorf("reading peer ID: %w", err)
		}
		return printID(id)
	}
}

func printID(id peer.ID) error {
	fmt.Printf("Peer ID : %s\n", id)
	if showMultiaddr {
		addr, err := peerid.Multiaddr(id)
		if err != nil {
			return fmt.Errorf("rendering multiaddr: %w", err)
		}
		fmt.Printf("Address : %s\n", addr)
	}
	return nil
}
