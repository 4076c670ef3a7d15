// Package driving defines the interfaces the outside world calls IN through.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them, and presentation adapters (cli, tui)
// consume them.
//
//   - UseCase / VoidUseCase / NoParamsUseCase: the uniform calling
//     conventions for application operations
//   - AccountService: the domain-facing boundary over the account
//     data sources
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
