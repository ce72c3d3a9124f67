package cli

var NewApp = newApp
