package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"StarGame/config"
	"StarGame/internal/game/manager"
	"StarGame/internal/server"
	"StarGame/internal/storage"
	"StarGame/internal/utils"
	"StarGame/internal/websocket"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tournament API and the spectator feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		port := config.C.Server.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetString("port")
		}

		repo, err := storage.OpenArchive(ctx, config.C)
		if err != nil {
			return err
		}
		defer storage.Close()

		hub := websocket.NewHub()
		go hub.Run()
		defer hub.Close()

		mgr := manager.NewGameManager(hub, repo)
		defer mgr.Close()

		defaults, err := startRequest(cmd)
		if err != nil {
			return err
		}
		router := server.NewRouter(mgr, hub, server.Options{
			Secret:   []byte(config.C.JWT.Secret),
			Defaults: defaults,
		})

		srv := &http.Server{Addr: port, Handler: router}
		errc := make(chan error, 1)
		go func() {
			utils.Log.Info("server running", "addr", port, "storage", config.C.Storage.Driver)
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		utils.Log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addGameFlags(serveCmd)
	serveCmd.Flags().String("port", "", "listen address (default server.port)")
}
