package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mose868/fashionhouse-sub000/cart"
	"github.com/mose868/fashionhouse-sub000/config"
	"github.com/mose868/fashionhouse-sub000/models"
	"github.com/mose868/fashionhouse-sub000/services"
)

type productCatalog interface {
	Product(ctx context.Context, productID string) (models.CatalogProduct, error)
}

type app struct {
	cfg         config.AppConfig
	out         io.Writer
	logger      *zap.Logger
	openStorage func(ctx context.Context) (cart.Storage, error)
	openCatalog func() productCatalog
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "cartctl",
		Short:         "Inspect and edit storefront carts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newShowCommand(a),
		newClearCommand(a),
		newSeedCommand(a),
		newTokenCommand(a),
	)
	return root
}

// openStore opens the cart of a device by its cart_session id. Commands act
// as an operator, so adds are never rejected for lack of a login.
func (a *app) openStore(ctx context.Context, sessionID string) (*cart.Store, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", sessionID, err)
	}
	s, err := a.openStorage(ctx)
	if err != nil {
		return nil, err
	}
	return cart.Open(ctx, s, a.cfg.CartKeyPrefix+id.String(),
		cart.WithAuthenticator(cart.AuthFunc(func(context.Context) bool { return true })),
		cart.WithLogger(a.logger),
		cart.WithNotifier(cart.NotifierFunc(func(_ context.Context, n cart.Notification) {
			fmt.Fprintf(a.out, "[%s] %s\n", n.Level, n.Message)
		})),
	), nil
}

func (a *app) printState(st cart.State) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Print a cart as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printState(store.State())
		},
	}
}

func newClearCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <session-id>",
		Short: "Remove every line from a cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return store.Clear(cmd.Context())
		},
	}
}

func newSeedCommand(a *app) *cobra.Command {
	var (
		productID string
		quantity  int
		variant   cart.Variant
	)
	cmd := &cobra.Command{
		Use:   "seed <session-id>",
		Short: "Add a catalog product to a cart",
		Long: `Add a catalog product to a cart, taking its name, price and image from the
product catalog the same way the storefront does. Adding a variant that is
already in the cart increases its quantity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			product, err := a.openCatalog().Product(ctx, productID)
			if err != nil {
				return err
			}
			store, err := a.openStore(ctx, args[0])
			if err != nil {
				return err
			}
			if _, err := store.AddItem(ctx, product.Snapshot(), quantity, variant); err != nil {
				return err
			}
			return a.printState(store.State())
		},
	}
	cmd.Flags().StringVar(&productID, "product", "", "catalog product id")
	cmd.Flags().IntVar(&quantity, "qty", 1, "quantity to add")
	cmd.Flags().StringVar(&variant.Size, "size", "", "size option")
	cmd.Flags().StringVar(&variant.Color, "color", "", "color option")
	cmd.Flags().StringVar(&variant.Fabric, "fabric", "", "fabric option")
	_ = cmd.MarkFlagRequired("product")
	return cmd
}

func newTokenCommand(a *app) *cobra.Command {
	var (
		userID string
		email  string
		name   string
		expiry time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a customer JWT for calling the cart API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			jwtService, err := services.NewJWTService(a.cfg.JWTSecret, expiry)
			if err != nil {
				return err
			}
			token, err := jwtService.GenerateCustomerJWT(userID, email, name)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "customer id")
	cmd.Flags().StringVar(&email, "email", "", "customer email")
	cmd.Flags().StringVar(&name, "name", "", "customer name")
	cmd.Flags().DurationVar(&expiry, "expiry", a.cfg.JWTExpiry, "token lifetime")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
