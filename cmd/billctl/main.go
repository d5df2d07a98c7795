// Command billctl manages bills from the terminal against the same SQLite
// database the API server uses.
package main

func main() {
	Execute()
}
