package version

var (
	AppName        = "Aide"
	AppDescription = "Conversational assistant backend with a multi-handler command dispatcher"
	AppVersion     = "dev"
)
