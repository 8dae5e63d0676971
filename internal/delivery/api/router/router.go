// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"guildbook/internal/delivery/api/middleware"
	"guildbook/internal/delivery/api/router/handler"
	"guildbook/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GuildHandler   *handler.GuildHandler
	AdminHandler   *handler.AdminHandler
	LedgerHandler  *handler.LedgerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	guildHandler   *handler.GuildHandler
	adminHandler   *handler.AdminHandler
	ledgerHandler  *handler.LedgerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		guildHandler:   params.GuildHandler,
		adminHandler:   params.AdminHandler,
		ledgerHandler:  params.LedgerHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Guild documents, guarded by guild or admin passwords
	guildsGroup := apiV1.Group("/guilds")
	{
		guildsGroup.GET("", r.guildHandler.ListGuilds)
		guildsGroup.POST("", r.guildHandler.CreateGuild)
		guildsGroup.POST("/login", r.guildHandler.Login)
		guildsGroup.PUT("/:id", r.guildHandler.SaveGuild)
		guildsGroup.DELETE("/:id", r.guildHandler.DeleteGuild)
	}

	// Master password routes
	adminGroup := apiV1.Group("/admin")
	{
		adminGroup.POST("/login", r.adminHandler.Login)
		adminGroup.PUT("/password", r.adminHandler.ChangePassword)
		adminGroup.PUT("/guilds/:id/password", r.adminHandler.ResetGuildPassword)
	}

	// Ledger routes run inside an authenticated guild session
	ledgerGroup := apiV1.Group("/ledger")
	ledgerGroup.Use(r.authMiddleware.Authenticate)
	ledgerGroup.Use(r.authMiddleware.RequireRole(entity.RoleGuild))
	{
		ledgerGroup.GET("", r.ledgerHandler.GetState)
		ledgerGroup.POST("/logout", r.ledgerHandler.Logout)
		ledgerGroup.GET("/qr", r.ledgerHandler.ShareCode)
		ledgerGroup.PUT("/name", r.ledgerHandler.RenameGuild)
	}

	financeGroup := ledgerGroup.Group("/finance")
	{
		financeGroup.POST("/deposit", r.ledgerHandler.Deposit)
		financeGroup.POST("/withdraw", r.ledgerHandler.Withdraw)
		financeGroup.POST("/convert", r.ledgerHandler.Convert)
	}

	membersGroup := ledgerGroup.Group("/members")
	{
		membersGroup.POST("", r.ledgerHandler.AddMember)
		membersGroup.PATCH("/:memberId", r.ledgerHandler.UpdateMember)
		membersGroup.DELETE("/:memberId", r.ledgerHandler.RemoveMember)
		membersGroup.POST("/:memberId/transfer-to", r.ledgerHandler.TransferGoldToMember)
		membersGroup.POST("/:memberId/transfer-from", r.ledgerHandler.TransferGoldFromMember)
		membersGroup.POST("/:memberId/wallet", r.ledgerHandler.UpdateMemberWallet)
	}

	itemsGroup := ledgerGroup.Group("/items")
	{
		itemsGroup.POST("", r.ledgerHandler.AddItem)
		itemsGroup.POST("/buy", r.ledgerHandler.BuyItem)
		itemsGroup.POST("/sell-batch", r.ledgerHandler.SellBatchItems)
		itemsGroup.POST("/delete-batch", r.ledgerHandler.DeleteBatchItems)
		itemsGroup.PATCH("/:itemId", r.ledgerHandler.UpdateItem)
		itemsGroup.DELETE("/:itemId", r.ledgerHandler.DeleteItem)
		itemsGroup.POST("/:itemId/transfer-from-member", r.ledgerHandler.TransferItemFromMember)
		itemsGroup.POST("/:itemId/withdraw", r.ledgerHandler.WithdrawItem)
		itemsGroup.POST("/:itemId/sell", r.ledgerHandler.SellItem)
	}

	basesGroup := ledgerGroup.Group("/bases")
	{
		basesGroup.POST("", r.ledgerHandler.AddBase)
		basesGroup.DELETE("/:baseId", r.ledgerHandler.DemolishBase)
		basesGroup.PUT("/:baseId/porte", r.ledgerHandler.UpgradeBase)
		basesGroup.PUT("/:baseId/name", r.ledgerHandler.RenameBase)
		basesGroup.POST("/:baseId/maintenance", r.ledgerHandler.PayBaseMaintenance)
		basesGroup.POST("/:baseId/income", r.ledgerHandler.CollectBaseIncome)
		basesGroup.GET("/:baseId/capacity", r.ledgerHandler.RoomCapacity)
		basesGroup.POST("/:baseId/rooms", r.ledgerHandler.AddRoom)
		basesGroup.DELETE("/:baseId/rooms/:roomId", r.ledgerHandler.RemoveRoom)
		basesGroup.POST("/:baseId/rooms/:roomId/furniture", r.ledgerHandler.AddFurniture)
		basesGroup.DELETE("/:baseId/rooms/:roomId/furniture/:furnitureId", r.ledgerHandler.RemoveFurniture)
	}

	domainsGroup := ledgerGroup.Group("/domains")
	{
		domainsGroup.POST("", r.ledgerHandler.CreateDomain)
		domainsGroup.PATCH("/:domainId", r.ledgerHandler.UpdateDomain)
		domainsGroup.DELETE("/:domainId", r.ledgerHandler.DemolishDomain)
		domainsGroup.POST("/:domainId/invest", r.ledgerHandler.InvestDomain)
		domainsGroup.POST("/:domainId/withdraw", r.ledgerHandler.WithdrawDomain)
		domainsGroup.POST("/:domainId/treasury", r.ledgerHandler.ManageDomainTreasury)
		domainsGroup.POST("/:domainId/govern", r.ledgerHandler.GovernDomain)
		domainsGroup.POST("/:domainId/popularity", r.ledgerHandler.ShiftPopularity)
		domainsGroup.POST("/:domainId/level-up", r.ledgerHandler.LevelUpDomain)
		domainsGroup.POST("/:domainId/buildings", r.ledgerHandler.AddDomainBuilding)
		domainsGroup.DELETE("/:domainId/buildings/:buildingId", r.ledgerHandler.RemoveDomainBuilding)
		domainsGroup.POST("/:domainId/units", r.ledgerHandler.AddDomainUnit)
		domainsGroup.DELETE("/:domainId/units/:unitId", r.ledgerHandler.RemoveDomainUnit)
	}

	npcsGroup := ledgerGroup.Group("/npcs")
	{
		npcsGroup.POST("", r.ledgerHandler.AddNPC)
		npcsGroup.POST("/pay", r.ledgerHandler.PayAllNPCs)
		npcsGroup.PATCH("/:npcId", r.ledgerHandler.UpdateNPC)
		npcsGroup.DELETE("/:npcId", r.ledgerHandler.RemoveNPC)
		npcsGroup.POST("/:npcId/pay", r.ledgerHandler.PaySingleNPC)
	}

	calendarGroup := ledgerGroup.Group("/calendar")
	{
		calendarGroup.POST("/advance", r.ledgerHandler.AdvanceDate)
		calendarGroup.PUT("/date", r.ledgerHandler.SetGameDate)
		calendarGroup.PUT("/nimb", r.ledgerHandler.ToggleNimbDay)
	}

	questsGroup := ledgerGroup.Group("/quests")
	{
		questsGroup.POST("", r.ledgerHandler.AddQuest)
		questsGroup.PATCH("/:questId", r.ledgerHandler.UpdateQuest)
		questsGroup.DELETE("/:questId", r.ledgerHandler.DeleteQuest)
		questsGroup.PUT("/:questId/status", r.ledgerHandler.UpdateQuestStatus)
	}
}
