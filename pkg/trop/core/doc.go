// Package core contains pipeline plumbing utilities: channel helpers,
// worker configuration via context, cancellation routing, journaling, and
// the locomotive that drives stages. It does not define business logic;
// instead it provides the scaffolding for package lite to run typed
// result pipelines with controlled concurrency.
package core
