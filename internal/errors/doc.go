// Package errors provides the structured error type shared by every layer of
// pokedex-api.
//
// Two families of error exist:
//   - *Error carries a Code, a user-facing Message, an optional Cause and
//     metadata. Orchestrators return these for validation and policy failures.
//   - *TransportError is produced only by the upstream API client. It covers
//     network failures, non-2xx responses and undecodable bodies; there is no
//     separate parse error kind.
//
// GetCode understands both, so a TransportError wrapped with Wrap keeps a
// meaningful code (404 becomes NotFound, everything else upstream becomes
// Unavailable unless the context was canceled).
//
// # Usage
//
//	if err := c.fetchJSON(ctx, path, &out); err != nil {
//	    return nil, err // *TransportError
//	}
//
//	chain, err := o.client.GetEvolutionChain(ctx, id)
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to fetch evolution chain %d", id)
//	}
//
// Handlers convert at the edge:
//
//	return nil, errors.ToGRPCError(err)
//
// Metadata (for example the upstream URL and HTTP status) travels as a
// structpb.Struct status detail and is restored by FromGRPCError.
package errors
