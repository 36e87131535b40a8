package handlers

// @title GenAI Proxy API
// @version 1.0
// @description A thin proxy that relays text prompts to a generative-language API and returns the candidate text as JSON

// @contact.name API Support
// @contact.url https://github.com/your-org/genai-proxy-api

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @tag.name generate
// @tag.description Prompt relay returning natural-language text with markdown fences stripped

// @tag.name evaluate
// @tag.description Prompt relay returning a raw JSON document (structured mode)
