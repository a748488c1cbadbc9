package nakama

import (
	"context"
	"database/sql"

	"coup/internal/app"
	"coup/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires the session engine into the Nakama runtime: loads config,
// builds the storage and stream adapters and registers the RPC surface.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)

	if err := config.LoadGameConfig(env["coup_config_path"]); err != nil {
		return err
	}
	cfg := config.GetGameConfig()
	cfg.ApplyEnv(env)

	svc := app.NewService(
		NewSessionStorageAdapter(nk),
		NewStreamNotifierAdapter(nk),
		logger,
		app.Options{Config: &cfg},
	)

	if err := RegisterRPCs(initializer, svc); err != nil {
		return err
	}

	logger.Info("Coup session engine loaded (challenge window %s, block window %s).",
		cfg.ChallengeWindow(), cfg.BlockWindow())
	return nil
}
