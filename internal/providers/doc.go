// Package providers implements the Generator interface for each supported
// LLM provider.
//
// Supported providers: OpenAI (GPT) and Google (Gemini).
//
// API keys come from the environment and are checked at call time, so the
// backend can start without credentials and report the gap instead of
// refusing to boot. Base URLs can be overridden via STDGUARD_OPENAI_BASE_URL
// and STDGUARD_GEMINI_BASE_URL, which tests use to point at local httptest
// servers.
//
// Use [New] to obtain a Generator by provider name and model string.
package providers
