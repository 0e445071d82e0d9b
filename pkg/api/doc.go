// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

/*
Package api implements the resilient client for the Schoolhouse learning
backend.

# Problem Statement

The Schoolhouse backend provides RAG tutoring, content management, exam
preview, progress tracking, and messaging over HTTP. Callers (the CLI
commands, and any embedding application) should never have to special-case
"backend down": a student reviewing notes on a train must see their notes,
and a tutoring question must still get a usable answer.

# Solution

One client, three explicit degradation strategies:

	┌──────────────────────────────────────────────────────────────────┐
	│                        endpoint wrapper                          │
	│                              │                                   │
	│                      ATTEMPT_REMOTE (once)                       │
	│               ┌──────────────┼──────────────────┐                │
	│           success     infra failure,       other failure        │
	│               │       fallback-eligible         │                │
	│               │              │                  │                │
	│         return remote   APPLY_FALLBACK     PROPAGATE error       │
	│                              │                                   │
	│            mock payload / local cache / synthesized answer       │
	└──────────────────────────────────────────────────────────────────┘

The strategies:

  - Mock substitution (exam sets, progress summary): a fixed example
    payload replaces the response on infrastructure failure only.
  - Cache as source of truth (notes, quizzes, remembered context): the
    local persisted store holds a per-user shadow list; writes and reads
    degrade to it with identical envelope shapes.
  - Synthesized answers (RAG queries): a deterministic keyword classifier
    picks a canned subject-specific explanation, flagged as offline.

Every envelope carries an Origin tag (remote, cache, synthetic). The shape
is identical regardless of origin; callers that don't care never notice.

There is exactly one remote attempt per call. No retries, no backoff: the
remote either answers or the configured strategy applies immediately.

# Error Taxonomy

Failures become *APIError values carrying the HTTP status (0 for network
errors), a display-ready message, the endpoint, and the raw server payload.
Client errors (4xx other than 404) always propagate; they describe a bad
request, not missing infrastructure, and masking them would hide real bugs.
404 responses additionally publish an event on the client's ErrorHub so a
listening collaborator can surface a "service degraded" banner.

# Which operations degrade

The per-operation fallback assignment is a curated decision, not a pattern:
over-applying fallback masks outages as success, under-applying it breaks
offline use. The assignment lives with each wrapper and is covered by tests;
change it deliberately.

# Usage

	store, _ := localstore.OpenBadger(localstore.DefaultBadgerConfig(dir))
	client := api.New(api.Options{Store: store})

	notes, err := client.ListNotes(ctx, api.ListNotesParams{UserID: "u1"})
	if err != nil {
	    // a real client error; infra failures were already absorbed
	}
	if notes.Origin == api.OriginCache {
	    // degraded but complete
	}
*/
package api
