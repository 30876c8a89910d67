package main

import (
	"context"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/event"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/web"
)

type App struct {
	Server   *web.GinServer
	Consumer *event.ScoreResultConsumer
}

func (a *App) StartConsumer() {
	a.Consumer.Start(context.Background())
}
