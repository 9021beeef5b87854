/*
Package ports defines the driven ports (interfaces) around the enfa converter.

These interfaces decouple the core logic from external implementations, allowing
conversions to be kept in various storage backends.

# Key Interfaces

  - ConversionStore: Responsible for persisting and loading conversion results.
*/
package ports
