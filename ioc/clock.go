package ioc

import (
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/service"
)

func InitClock() service.Clock {
	return service.NewSystemClock()
}
