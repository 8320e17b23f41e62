package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/at-ishikawa/eliana/internal/config"
	"github.com/at-ishikawa/eliana/internal/knowledge"
	"github.com/at-ishikawa/eliana/internal/responder"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func openStore(cfg *config.Config) (*knowledge.Store, error) {
	var opts []knowledge.Option
	if cfg.Knowledge.SeedFile != "" {
		opts = append(opts, knowledge.WithSeedFile(cfg.Knowledge.SeedFile))
	}
	store, err := knowledge.Open(cfg.Knowledge.DataFile, opts...)
	if err != nil {
		return nil, fmt.Errorf("knowledge.Open(%s) > %w", cfg.Knowledge.DataFile, err)
	}
	return store, nil
}

func loadConversation() (*config.Config, *knowledge.Store, *responder.Conversation, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := openStore(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	seed := uint64(time.Now().UnixNano())
	conversation := responder.NewConversation(
		responder.NewResolver(store),
		cfg.Chat.ContextHistorySize,
		cfg.Chat.PatternLogSize,
		rand.New(rand.NewPCG(seed, seed>>1)),
	)
	return cfg, store, conversation, nil
}
