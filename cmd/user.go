package cmd

import (
	"fmt"

	"github.com/nsxzhou1114/conduit-api/internal/dto"
	"github.com/nsxzhou1114/conduit-api/internal/logger"
	"github.com/nsxzhou1114/conduit-api/internal/model"
	"github.com/nsxzhou1114/conduit-api/internal/service"
	"github.com/nsxzhou1114/conduit-api/pkg/auth"
	"github.com/urfave/cli/v2"
)

func userCommand() *cli.Command {
	return &cli.Command{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "用户管理",
		Subcommands: []*cli.Command{
			{
				Name:   "create",
				Usage:  "创建用户并输出访问令牌",
				Action: createUser,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"n"}, Usage: "用户名", Required: true},
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "邮箱", Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "密码", Required: true},
				},
			},
			{
				Name:   "list",
				Usage:  "列出用户",
				Action: listUsers,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "最多显示条数", Value: 20},
				},
			},
		},
	}
}

// createUser 通过注册流程创建用户，与 POST /api/register 行为一致
func createUser(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.close()

	blacklist, err := env.blacklist(c.Context)
	if err != nil {
		return err
	}
	authService := service.NewAuthService(
		env.db,
		logger.SugaredLogger,
		auth.NewPasswordHasher(env.cfg.Auth.BcryptCost),
		auth.NewTokenManager(env.cfg.JWT.SecretKey, env.cfg.JWT.Issuer, blacklist),
	)

	token, err := authService.Register(c.Context, &dto.RegisterRequest{
		Username: c.String("username"),
		Email:    c.String("email"),
		Password: c.String("password"),
	})
	if err != nil {
		return fmt.Errorf("创建用户失败: %w", err)
	}

	fmt.Printf("✅ 用户 %s 创建成功\n", c.String("username"))
	fmt.Printf("访问令牌: %s\n", token)
	return nil
}

// listUsers 列出最近注册的用户
func listUsers(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	defer env.close()

	var users []model.User
	if err := env.db.WithContext(c.Context).
		Order("id DESC").
		Limit(c.Int("limit")).
		Find(&users).Error; err != nil {
		return fmt.Errorf("查询用户失败: %w", err)
	}

	fmt.Printf("%-6s %-20s %-30s %-20s\n", "ID", "用户名", "邮箱", "注册时间")
	for _, u := range users {
		fmt.Printf("%-6d %-20s %-30s %-20s\n", u.ID, u.Username, u.Email, u.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
