package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-manager-api/internal/config"
	"github.com/vfg2006/tiktok-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/tiktok-manager-api/pkg/middleware"
)

// Emite um JWT para chamar a API. Não há cadastro de usuários: quem tem o
// AUTH_SECRET emite os tokens dos clientes.
func main() {
	clientID := flag.String("client", "", "identificador do cliente")
	admin := flag.Bool("admin", false, "emite o token com papel de administrador")
	ttl := flag.Duration("ttl", 24*time.Hour, "validade do token")
	flag.Parse()

	if *clientID == "" {
		logrus.Fatal("-client é obrigatório")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	roleID := middleware.RoleOperator
	if *admin {
		roleID = middleware.RoleAdmin
	}

	token, err := authenticating.NewService(cfg.Auth).GenerateToken(*clientID, roleID, *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar token")
	}

	fmt.Println(token)
}
