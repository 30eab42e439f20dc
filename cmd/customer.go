package cmd

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"invoicer/pkg/models"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers",
}

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new customer",
	Example: `  invoicer customer add --name "Acme Pty Ltd" --code AC \
    --address "2 Sample Ave, Sydney NSW 2000" --phone 02-0000-0000 \
    --contact "Jordan Lee" --contact-phone 0400-111222 --email accounts@acme.example`,
	RunE: runCustomerAdd,
}

var customerEditCmd = &cobra.Command{
	Use:   "edit [code]",
	Short: "Edit an existing customer (only the given flags change)",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerEdit,
}

var customerRemoveCmd = &cobra.Command{
	Use:   "remove [code]",
	Short: "Remove a customer and its invoice-number sequence",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerRemove,
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all customers",
	RunE:  runCustomerList,
}

func init() {
	rootCmd.AddCommand(customerCmd)
	customerCmd.AddCommand(customerAddCmd, customerEditCmd, customerRemoveCmd, customerListCmd)

	for _, c := range []*cobra.Command{customerAddCmd, customerEditCmd} {
		c.Flags().String("name", "", "Customer name")
		c.Flags().String("address", "", "Billing address")
		c.Flags().String("phone", "", "Phone number")
		c.Flags().String("contact", "", "Contact person")
		c.Flags().String("contact-phone", "", "Contact person's phone")
		c.Flags().String("email", "", "Billing email")
	}
	customerAddCmd.Flags().String("code", "", "2-3 letter customer code used in invoice numbers")
	customerAddCmd.MarkFlagRequired("name")
	customerAddCmd.MarkFlagRequired("code")
}

// validateCode enforces the original 2-3 letter customer code format and
// normalizes it to upper case.
func validateCode(code string) (string, error) {
	if len(code) < 2 || len(code) > 3 {
		return "", fmt.Errorf("customer code must be 2-3 letters, got %q", code)
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("customer code must be letters only, got %q", code)
		}
	}
	return strings.ToUpper(code), nil
}

func runCustomerAdd(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}

	rawCode, _ := cmd.Flags().GetString("code")
	code, err := validateCode(rawCode)
	if err != nil {
		return err
	}

	c := &models.Customer{Code: code}
	c.Name, _ = cmd.Flags().GetString("name")
	c.Address, _ = cmd.Flags().GetString("address")
	c.Phone, _ = cmd.Flags().GetString("phone")
	c.ContactPerson, _ = cmd.Flags().GetString("contact")
	c.ContactPhone, _ = cmd.Flags().GetString("contact-phone")
	c.Email, _ = cmd.Flags().GetString("email")

	if err := s.AddCustomer(c); err != nil {
		return err
	}
	fmt.Printf("Customer %s added (code %s)\n", c.Name, c.Code)
	return nil
}

func runCustomerEdit(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}

	code, err := validateCode(args[0])
	if err != nil {
		return err
	}
	c, err := s.CustomerByCode(code)
	if err != nil {
		return err
	}

	apply := func(flag string, dst *string) {
		if cmd.Flags().Changed(flag) {
			*dst, _ = cmd.Flags().GetString(flag)
		}
	}
	apply("name", &c.Name)
	apply("address", &c.Address)
	apply("phone", &c.Phone)
	apply("contact", &c.ContactPerson)
	apply("contact-phone", &c.ContactPhone)
	apply("email", &c.Email)

	if err := s.UpdateCustomer(c); err != nil {
		return err
	}
	fmt.Printf("Customer %s updated\n", c.Code)
	return nil
}

func runCustomerRemove(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	code, err := validateCode(args[0])
	if err != nil {
		return err
	}
	if err := s.DeleteCustomer(code); err != nil {
		return err
	}
	fmt.Printf("Customer %s removed\n", code)
	return nil
}

func runCustomerList(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	customers, err := s.ListCustomers()
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		fmt.Println("No customers found.")
		return nil
	}
	for i, c := range customers {
		fmt.Printf("%d. %s (Code: %s)\n", i+1, c.Name, c.Code)
	}
	return nil
}
