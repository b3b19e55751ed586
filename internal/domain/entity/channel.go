package entity

// Channel ids. The channel only selects reply formatting.
const (
	ChannelTelegram = "telegram"
	ChannelFacebook = "facebook"
	ChannelWeb      = "web"
)
