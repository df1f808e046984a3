package handler

// APIV1Prefix is the canonical base path for the public HTTP API. Scoring,
// recalculation and rules routes all mount under it; keep one source of
// truth so paths never drift between handlers and tests.
const APIV1Prefix = "/api/v1"
