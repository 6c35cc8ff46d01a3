package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/authenticating"
)

func newTokenCmd() *cobra.Command {
	var (
		secret      string
		claims      domain.Claims
		ttl         time.Duration
		restaurants []string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite um token de acesso assinado com AUTH_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = viper.GetString("AUTH_SECRET")
			}

			claims.UserRestaurants = restaurants
			token, err := authenticating.NewService(secret).IssueToken(claims, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "segredo HS256 (padrão: variável AUTH_SECRET)")
	cmd.Flags().IntVar(&claims.UserID, "user-id", 1, "id do usuário")
	cmd.Flags().StringVar(&claims.UserName, "name", "", "nome do usuário")
	cmd.Flags().StringVar(&claims.UserEmail, "email", "", "e-mail do usuário")
	cmd.Flags().IntVar(&claims.UserRoleID, "role", domain.RoleOwner, "perfil: 1 admin, 2 supervisor, 3 dono")
	cmd.Flags().StringSliceVar(&restaurants, "restaurants", nil, "restaurantes vinculados (ids separados por vírgula)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "validade do token")

	return cmd
}
